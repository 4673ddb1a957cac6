package ledger

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
)

const trackingAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Generator issues order identifiers ("EE-" + 6 digits) and tracking
// numbers ("TRK" + 8 uppercase base-36 characters).
type Generator interface {
	OrderID() string
	TrackingNumber() string
}

// randomGenerator draws identifiers at random but records every issued
// value, so identifiers never repeat within a process. The 6-digit order
// ID space is small enough that birthday collisions would otherwise show
// up in normal operation.
type randomGenerator struct {
	mu       sync.Mutex
	orderIDs map[string]struct{}
	tracking map[string]struct{}
}

// NewGenerator creates a collision-checked random identifier generator.
func NewGenerator() Generator {
	return &randomGenerator{
		orderIDs: make(map[string]struct{}),
		tracking: make(map[string]struct{}),
	}
}

// OrderID returns a fresh "EE-######" identifier.
func (g *randomGenerator) OrderID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	for {
		id := fmt.Sprintf("EE-%06d", randInt(900000)+100000)
		if _, taken := g.orderIDs[id]; !taken {
			g.orderIDs[id] = struct{}{}
			return id
		}
	}
}

// TrackingNumber returns a fresh "TRK" + 8 base-36 character number.
func (g *randomGenerator) TrackingNumber() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	for {
		buf := make([]byte, 8)
		for i := range buf {
			buf[i] = trackingAlphabet[randInt(int64(len(trackingAlphabet)))]
		}
		tn := "TRK" + string(buf)
		if _, taken := g.tracking[tn]; !taken {
			g.tracking[tn] = struct{}{}
			return tn
		}
	}
}

// randInt returns a uniform random integer in [0, max).
func randInt(max int64) int64 {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		// crypto/rand only fails when the platform entropy source is
		// broken; nothing sensible can be done here.
		panic(fmt.Sprintf("ledger: reading random source: %v", err))
	}
	return n.Int64()
}
