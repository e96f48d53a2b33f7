package signer

import (
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
)

// SignTx signs the transaction with the signer matching its type: the
// London signer for dynamic fee (EIP-1559) transactions, the EIP-155 signer
// for legacy ones.
func (id *Identity) SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	var txSigner types.Signer

	switch tx.Type() {
	case types.DynamicFeeTxType:
		txSigner = types.NewLondonSigner(chainID)
	default:
		txSigner = types.NewEIP155Signer(chainID)
	}

	signedTx, err := types.SignTx(tx, txSigner, id.key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign transaction")
	}

	return signedTx, nil
}
