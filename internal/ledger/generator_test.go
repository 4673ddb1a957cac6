package ledger

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	orderIDPattern  = regexp.MustCompile(`^EE-\d{6}$`)
	trackingPattern = regexp.MustCompile(`^TRK[0-9A-Z]{8}$`)
)

func TestGenerator_OrderID_Format(t *testing.T) {
	g := NewGenerator()

	for i := 0; i < 50; i++ {
		id := g.OrderID()
		require.Regexp(t, orderIDPattern, id)
		// Six digits and no leading zero keeps the number in 100000..999999.
		assert.GreaterOrEqual(t, id[3], byte('1'))
	}
}

func TestGenerator_TrackingNumber_Format(t *testing.T) {
	g := NewGenerator()

	for i := 0; i < 50; i++ {
		require.Regexp(t, trackingPattern, g.TrackingNumber())
	}
}

func TestGenerator_NeverRepeats(t *testing.T) {
	g := NewGenerator()

	orderIDs := make(map[string]struct{})
	tracking := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := g.OrderID()
		_, seen := orderIDs[id]
		require.False(t, seen, "duplicate order ID %s", id)
		orderIDs[id] = struct{}{}

		tn := g.TrackingNumber()
		_, seen = tracking[tn]
		require.False(t, seen, "duplicate tracking number %s", tn)
		tracking[tn] = struct{}{}
	}
}
