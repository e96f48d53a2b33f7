package wallet

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github/chapool/eth-payout/internal/config"
	"github/chapool/eth-payout/internal/wallet/chain"
	"github/chapool/eth-payout/internal/wallet/signer"
	"github/chapool/eth-payout/internal/wallet/transfer"
)

// Service 连接管理器：进程内唯一的链连接与签名身份，首次使用时
// 惰性初始化，初始化门由互斥锁保护，避免并发请求重复探测候选节点。
type Service struct {
	cfg config.PayoutServer

	mu       sync.Mutex
	client   *chain.Client
	identity *signer.Identity
}

// NewService 创建连接管理器
func NewService(cfg config.PayoutServer) *Service {
	return &Service{cfg: cfg}
}

// Ensure 返回已绑定的连接与签名身份。没有配置签名私钥（或助记词）时
// 返回 ConfigurationError；所有候选节点都不可达时返回 NetworkError，
// 是否重试由下一个请求决定。
func (s *Service) Ensure(ctx context.Context) (chain.Backend, *signer.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil && s.client.Bound() {
		return s.client, s.identity, nil
	}

	if s.identity == nil {
		identity, err := s.buildIdentity()
		if err != nil {
			return nil, nil, err
		}

		s.identity = identity

		log.Info().
			Str("address", identity.Address().Hex()).
			Int64("chain_id", s.cfg.ChainID).
			Msg("Signer identity initialized")
	}

	if s.client == nil {
		s.client = chain.NewClient(s.cfg.RPCEndpoints, s.cfg.ChainID, s.cfg.RPCProbeTimeout)
	}

	if err := s.client.Connect(ctx); err != nil {
		return nil, nil, &transfer.NetworkError{Op: "connect", Err: err}
	}

	return s.client, s.identity, nil
}

// Identity returns the signer identity if one has been initialized yet.
func (s *Service) Identity() *signer.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.identity
}

// Close releases the bound connection.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		s.client.Close()
	}
}

func (s *Service) buildIdentity() (*signer.Identity, error) {
	switch {
	case s.cfg.SignerPrivateKey != "":
		identity, err := signer.NewIdentityFromHex(s.cfg.SignerPrivateKey)
		if err != nil {
			return nil, &transfer.ConfigurationError{Reason: "invalid signer private key"}
		}

		return identity, nil

	case s.cfg.SignerMnemonic != "":
		identity, err := signer.NewIdentityFromMnemonic(s.cfg.SignerMnemonic)
		if err != nil {
			return nil, &transfer.ConfigurationError{Reason: "invalid signer mnemonic"}
		}

		return identity, nil

	default:
		return nil, &transfer.ConfigurationError{Reason: "no signer private key or mnemonic configured"}
	}
}
