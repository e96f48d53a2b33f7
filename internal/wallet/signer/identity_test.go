package signer_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/eth-payout/internal/wallet/signer"
)

const (
	// well known go-ethereum documentation key, do not fund
	testPrivateKeyHex = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	testAddress       = "0x96216849c49358B10257cb55b28eA603c874b05E"

	// well known hardhat development mnemonic, account 0
	testMnemonic        = "test test test test test test test test test test test junk"
	testMnemonicAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

func TestNewIdentityFromHex(t *testing.T) {
	id, err := signer.NewIdentityFromHex(testPrivateKeyHex)
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(testAddress), id.Address())

	// 0x prefix is accepted as well
	id2, err := signer.NewIdentityFromHex("0x" + testPrivateKeyHex)
	require.NoError(t, err)
	assert.Equal(t, id.Address(), id2.Address())
}

func TestNewIdentityFromHexInvalid(t *testing.T) {
	_, err := signer.NewIdentityFromHex("not-a-key")
	require.Error(t, err)
}

func TestNewIdentityFromMnemonic(t *testing.T) {
	id, err := signer.NewIdentityFromMnemonic(testMnemonic)
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(testMnemonicAddress), id.Address())
}

func TestNewIdentityFromMnemonicInvalid(t *testing.T) {
	_, err := signer.NewIdentityFromMnemonic("definitely not twelve valid words")
	require.Error(t, err)
}

func TestIdentityStringNeverExposesKey(t *testing.T) {
	id, err := signer.NewIdentityFromHex(testPrivateKeyHex)
	require.NoError(t, err)
	assert.Equal(t, testAddress, id.String())
	assert.NotContains(t, id.String(), testPrivateKeyHex)
}

func TestSignTxDynamicFee(t *testing.T) {
	id, err := signer.NewIdentityFromHex(testPrivateKeyHex)
	require.NoError(t, err)

	chainID := big.NewInt(1)
	to := common.HexToAddress("0x742d35Cc6634C0532925a3b844Bc454e4438f44e")

	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     7,
		GasTipCap: big.NewInt(1_500_000_000),
		GasFeeCap: big.NewInt(30_000_000_000),
		Gas:       params.TxGas,
		To:        &to,
		Value:     big.NewInt(1),
	})

	signedTx, err := id.SignTx(tx, chainID)
	require.NoError(t, err)

	from, err := types.Sender(types.NewLondonSigner(chainID), signedTx)
	require.NoError(t, err)
	assert.Equal(t, id.Address(), from)
}

func TestSignTxLegacy(t *testing.T) {
	id, err := signer.NewIdentityFromHex(testPrivateKeyHex)
	require.NoError(t, err)

	chainID := big.NewInt(1)
	to := common.HexToAddress("0x742d35Cc6634C0532925a3b844Bc454e4438f44e")

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    7,
		GasPrice: big.NewInt(20_000_000_000),
		Gas:      params.TxGas,
		To:       &to,
		Value:    big.NewInt(1),
	})

	signedTx, err := id.SignTx(tx, chainID)
	require.NoError(t, err)

	from, err := types.Sender(types.NewEIP155Signer(chainID), signedTx)
	require.NoError(t, err)
	assert.Equal(t, id.Address(), from)
}
