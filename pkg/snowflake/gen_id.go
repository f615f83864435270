package snowflake

import (
	"fmt"
	"time"

	"github.com/sony/sonyflake"
)

// epoch is the sonyflake start time; ids stay ordered as long as it never changes.
var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Sequencer hands out strictly increasing ids for one machine id.
type Sequencer struct {
	node *sonyflake.Sonyflake
}

func NewSequencer(machineID uint16) (*Sequencer, error) {
	sf, err := sonyflake.New(sonyflake.Settings{
		StartTime: epoch,
		MachineID: func() (uint16, error) { return machineID, nil },
	})
	if err != nil {
		return nil, fmt.Errorf("create sonyflake for machine %d: %w", machineID, err)
	}
	return &Sequencer{node: sf}, nil
}

// Next returns the next id. It only fails once the sonyflake time range is exhausted.
func (s *Sequencer) Next() (uint64, error) {
	return s.node.NextID()
}
