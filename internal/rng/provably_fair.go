package rng

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"sync/atomic"
)

// HMACSource derives draws from HMAC-SHA256(serverSeed, clientSeed:nonce) so
// a player holding the client seed and the revealed server seed can re-derive
// every outcome after the fact. The nonce advances once per draw.
type HMACSource struct {
	serverSeed string
	clientSeed string
	nonce      atomic.Uint64
}

// NewHMAC builds a provably-fair source for one server/client seed pair.
func NewHMAC(serverSeed, clientSeed string) *HMACSource {
	return &HMACSource{serverSeed: serverSeed, clientSeed: clientSeed}
}

// ServerSeedHash is published before play so the server cannot swap seeds
// after seeing bets.
func (s *HMACSource) ServerSeedHash() string {
	sum := sha256.Sum256([]byte(s.serverSeed))
	return hex.EncodeToString(sum[:])
}

// Nonce reports how many draws have been consumed.
func (s *HMACSource) Nonce() uint64 {
	return s.nonce.Load()
}

func (s *HMACSource) draw() uint64 {
	n := s.nonce.Add(1) - 1
	h := hmac.New(sha256.New, []byte(s.serverSeed))
	fmt.Fprintf(h, "%s:%d", s.clientSeed, n)
	return binary.BigEndian.Uint64(h.Sum(nil)[:8])
}

func (s *HMACSource) Intn(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("rng: Intn called with n=%d", n))
	}
	return int(s.draw() % uint64(n))
}

func (s *HMACSource) Float64() float64 {
	return float64(s.draw()>>11) / (1 << 53)
}
