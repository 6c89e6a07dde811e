package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTerminalStatus(t *testing.T) {
	assert.True(t, IsTerminalStatus(StatusDone))
	assert.True(t, IsTerminalStatus(StatusRefused))
	assert.True(t, IsTerminalStatus(StatusNotOrdered))

	assert.False(t, IsTerminalStatus(StatusPending))
	assert.False(t, IsTerminalStatus(StatusAccepted))
	assert.False(t, IsTerminalStatus(StatusInProgress))
	assert.False(t, IsTerminalStatus(StatusModern))
	assert.False(t, IsTerminalStatus("LEGACY"))
}

func TestQueueRank_Ordering(t *testing.T) {
	ordered := []string{
		StatusPending,
		StatusAccepted,
		StatusInProgress,
		StatusModern,
		StatusDone,
		StatusRefused,
		StatusNotOrdered,
	}

	for i := 1; i < len(ordered); i++ {
		assert.Less(t, QueueRank(ordered[i-1]), QueueRank(ordered[i]),
			"статус %s должен стоять в очереди выше %s", ordered[i-1], ordered[i])
	}
}

func TestQueueRank_UnknownGoesLast(t *testing.T) {
	for _, s := range []string{StatusPending, StatusNotOrdered} {
		assert.Less(t, QueueRank(s), QueueRank("LEGACY"),
			"нераспознанный статус должен быть ниже любого известного")
	}
	assert.False(t, IsKnownStatus("LEGACY"))
	assert.True(t, IsKnownStatus(StatusModern))
}
