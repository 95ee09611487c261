package vault

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"encoding/pem"
	"net"
	"testing"

	"github.com/fernet/fernet-go"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/sisgate/gateway-api/internal/vault/vaultpb"
)

// fakeVault serves a Fernet-encrypted key mapping like the real vault does.
type fakeVault struct {
	vaultpb.UnimplementedKeysPairsServiceServer

	key        *fernet.Key
	payload    map[string]string
	lastSystem string
}

func (f *fakeVault) KeysPairs(ctx context.Context, req *vaultpb.EncryptKeysRequest) (*vaultpb.EncryptKeysResponse, error) {
	f.lastSystem = req.GetSystemCode()
	plain, err := json.Marshal(f.payload)
	if err != nil {
		return nil, err
	}
	tok, err := fernet.EncryptAndSign(plain, f.key)
	if err != nil {
		return nil, err
	}
	return &vaultpb.EncryptKeysResponse{EncryptedData: tok}, nil
}

func pemPrivate(t *testing.T, key *rsa.PrivateKey) string {
	t.Helper()
	block := &pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)}
	return base64.StdEncoding.EncodeToString(pem.EncodeToMemory(block))
}

func pemPublic(t *testing.T, key *rsa.PublicKey) string {
	t.Helper()
	der, err := x509.MarshalPKIXPublicKey(key)
	if err != nil {
		t.Fatalf("marshal public key: %v", err)
	}
	block := &pem.Block{Type: "PUBLIC KEY", Bytes: der}
	return base64.StdEncoding.EncodeToString(pem.EncodeToMemory(block))
}

func startVault(t *testing.T, fv *fakeVault) vaultpb.KeysPairsServiceClient {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer()
	vaultpb.RegisterKeysPairsServiceServer(srv, fv)
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial bufnet: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return vaultpb.NewKeysPairsServiceClient(conn)
}

func TestClient_LoadsAllFourKeys(t *testing.T) {
	accessKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate rsa key: %v", err)
	}
	refreshKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate rsa key: %v", err)
	}

	fkey := new(fernet.Key)
	if err := fkey.Generate(); err != nil {
		t.Fatalf("generate fernet key: %v", err)
	}

	fv := &fakeVault{
		key: fkey,
		payload: map[string]string{
			"private_key":         pemPrivate(t, accessKey),
			"refresh_private_key": pemPrivate(t, refreshKey),
			"public_key":          pemPublic(t, &accessKey.PublicKey),
			"refresh_public_key":  pemPublic(t, &refreshKey.PublicKey),
		},
	}

	client := NewClient(startVault(t, fv), fkey, "SYS")
	ctx := context.Background()

	priv, err := client.PrivateKey(ctx)
	if err != nil {
		t.Fatalf("PrivateKey: %v", err)
	}
	if !priv.Equal(accessKey) {
		t.Error("PrivateKey did not round-trip")
	}
	if fv.lastSystem != "SYS" {
		t.Errorf("system_code = %q, want SYS", fv.lastSystem)
	}

	rpriv, err := client.RefreshPrivateKey(ctx)
	if err != nil {
		t.Fatalf("RefreshPrivateKey: %v", err)
	}
	if !rpriv.Equal(refreshKey) {
		t.Error("RefreshPrivateKey did not round-trip")
	}

	pub, err := client.PublicKey(ctx)
	if err != nil {
		t.Fatalf("PublicKey: %v", err)
	}
	if !pub.Equal(&accessKey.PublicKey) {
		t.Error("PublicKey did not round-trip")
	}

	rpub, err := client.RefreshPublicKey(ctx)
	if err != nil {
		t.Fatalf("RefreshPublicKey: %v", err)
	}
	if !rpub.Equal(&refreshKey.PublicKey) {
		t.Error("RefreshPublicKey did not round-trip")
	}
}

func TestClient_WrongFernetKeyFails(t *testing.T) {
	serverKey := new(fernet.Key)
	if err := serverKey.Generate(); err != nil {
		t.Fatalf("generate fernet key: %v", err)
	}
	clientKey := new(fernet.Key)
	if err := clientKey.Generate(); err != nil {
		t.Fatalf("generate fernet key: %v", err)
	}

	fv := &fakeVault{key: serverKey, payload: map[string]string{}}
	client := NewClient(startVault(t, fv), clientKey, "SYS")

	if _, err := client.PublicKey(context.Background()); err == nil {
		t.Fatal("expected decryption failure with mismatched fernet key")
	}
}

func TestClient_MissingFieldFails(t *testing.T) {
	fkey := new(fernet.Key)
	if err := fkey.Generate(); err != nil {
		t.Fatalf("generate fernet key: %v", err)
	}

	fv := &fakeVault{key: fkey, payload: map[string]string{}}
	client := NewClient(startVault(t, fv), fkey, "SYS")

	if _, err := client.PrivateKey(context.Background()); err == nil {
		t.Fatal("expected error for payload missing private_key")
	}
}
