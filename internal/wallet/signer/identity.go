package signer

import (
	"crypto/ecdsa"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip32"
	"github.com/tyler-smith/go-bip39"
)

// defaultDerivationPath m/44'/60'/0'/0/0 — first account of the standard
// Ethereum BIP-44 tree.
var defaultDerivationPath = []uint32{
	bip32.FirstHardenedChild + 44,
	bip32.FirstHardenedChild + 60,
	bip32.FirstHardenedChild,
	0,
	0,
}

// Identity 绑定到单一连接的签名身份。私钥只存在于进程内存中，
// 不提供任何导出、序列化或日志输出途径。
type Identity struct {
	address common.Address
	key     *ecdsa.PrivateKey
}

// NewIdentityFromHex 从十六进制私钥创建签名身份。
func NewIdentityFromHex(hexKey string) (*Identity, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse private key")
	}

	return newIdentity(key), nil
}

// NewIdentityFromMnemonic 从 BIP-39 助记词派生签名身份
// （路径 m/44'/60'/0'/0/0）。
func NewIdentityFromMnemonic(mnemonic string) (*Identity, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, errors.New("invalid mnemonic")
	}

	seed := bip39.NewSeed(mnemonic, "")

	key, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive master key")
	}

	for _, index := range defaultDerivationPath {
		key, err = key.NewChildKey(index)
		if err != nil {
			return nil, errors.Wrap(err, "failed to derive child key")
		}
	}

	privateKey, err := crypto.ToECDSA(key.Key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to convert derived key to ECDSA")
	}

	return newIdentity(privateKey), nil
}

func newIdentity(key *ecdsa.PrivateKey) *Identity {
	return &Identity{
		address: crypto.PubkeyToAddress(key.PublicKey),
		key:     key,
	}
}

// Address returns the address derived from the private key.
func (id *Identity) Address() common.Address {
	return id.address
}

// String renders the identity as its address only.
func (id *Identity) String() string {
	return id.address.Hex()
}
