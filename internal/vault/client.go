package vault

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/fernet/fernet-go"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/sisgate/gateway-api/internal/vault/vaultpb"
)

// Payload field names inside the decrypted vault mapping.
const (
	fieldPrivateKey        = "private_key"
	fieldRefreshPrivateKey = "refresh_private_key"
	fieldPublicKey         = "public_key"
	fieldRefreshPublicKey  = "refresh_public_key"
)

// KeyProvider exposes the four RSA keys used to sign and verify tokens.
type KeyProvider interface {
	PrivateKey(ctx context.Context) (*rsa.PrivateKey, error)
	RefreshPrivateKey(ctx context.Context) (*rsa.PrivateKey, error)
	PublicKey(ctx context.Context) (*rsa.PublicKey, error)
	RefreshPublicKey(ctx context.Context) (*rsa.PublicKey, error)
}

// Client fetches key pairs from the external vault over gRPC. The response
// carries a Fernet token; its plaintext is a JSON mapping of base64-encoded
// PEM blobs. Every getter re-fetches from the vault — correctness does not
// depend on caching.
type Client struct {
	rpc        vaultpb.KeysPairsServiceClient
	key        *fernet.Key
	systemCode string
}

// Dial connects to the vault RPC endpoint. The channel is insecure by
// contract; payload confidentiality comes from the Fernet layer.
func Dial(addr, secretKey, systemCode string) (*Client, error) {
	key, err := fernet.DecodeKey(secretKey)
	if err != nil {
		return nil, fmt.Errorf("decode VAULT_SECRET_KEY: %w", err)
	}

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial vault %s: %w", addr, err)
	}

	log.Info().Str("addr", addr).Msg("vault RPC channel created")

	return &Client{
		rpc:        vaultpb.NewKeysPairsServiceClient(conn),
		key:        key,
		systemCode: systemCode,
	}, nil
}

// NewClient builds a Client on an existing RPC client. Used by tests with
// an in-process server.
func NewClient(rpc vaultpb.KeysPairsServiceClient, key *fernet.Key, systemCode string) *Client {
	return &Client{rpc: rpc, key: key, systemCode: systemCode}
}

// keysPairs performs the vault round trip and returns the decrypted mapping.
func (c *Client) keysPairs(ctx context.Context) (map[string]string, error) {
	resp, err := c.rpc.KeysPairs(ctx, &vaultpb.EncryptKeysRequest{SystemCode: c.systemCode})
	if err != nil {
		return nil, fmt.Errorf("vault keysPairs rpc: %w", err)
	}

	plain := fernet.VerifyAndDecrypt(resp.GetEncryptedData(), 0, []*fernet.Key{c.key})
	if plain == nil {
		return nil, fmt.Errorf("vault payload decryption failed")
	}

	pairs := map[string]string{}
	if err := json.Unmarshal(plain, &pairs); err != nil {
		return nil, fmt.Errorf("decode vault payload: %w", err)
	}
	return pairs, nil
}

// loadPEM decodes one base64 PEM entry from the vault mapping.
func (c *Client) loadPEM(ctx context.Context, field string) ([]byte, error) {
	pairs, err := c.keysPairs(ctx)
	if err != nil {
		return nil, err
	}
	enc, ok := pairs[field]
	if !ok {
		return nil, fmt.Errorf("vault payload missing %q", field)
	}
	pem, err := base64.StdEncoding.DecodeString(enc)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", field, err)
	}
	return pem, nil
}

func (c *Client) privateKey(ctx context.Context, field string) (*rsa.PrivateKey, error) {
	pem, err := c.loadPEM(ctx, field)
	if err != nil {
		return nil, err
	}
	key, err := jwt.ParseRSAPrivateKeyFromPEM(pem)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", field, err)
	}
	return key, nil
}

func (c *Client) publicKey(ctx context.Context, field string) (*rsa.PublicKey, error) {
	pem, err := c.loadPEM(ctx, field)
	if err != nil {
		return nil, err
	}
	key, err := jwt.ParseRSAPublicKeyFromPEM(pem)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", field, err)
	}
	return key, nil
}

func (c *Client) PrivateKey(ctx context.Context) (*rsa.PrivateKey, error) {
	return c.privateKey(ctx, fieldPrivateKey)
}

func (c *Client) RefreshPrivateKey(ctx context.Context) (*rsa.PrivateKey, error) {
	return c.privateKey(ctx, fieldRefreshPrivateKey)
}

func (c *Client) PublicKey(ctx context.Context) (*rsa.PublicKey, error) {
	return c.publicKey(ctx, fieldPublicKey)
}

func (c *Client) RefreshPublicKey(ctx context.Context) (*rsa.PublicKey, error) {
	return c.publicKey(ctx, fieldRefreshPublicKey)
}
