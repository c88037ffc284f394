package ids

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

var ErrUnknownScheme = errors.New("ids: unknown scheme")

type Scheme string

const (
	SchemeULID Scheme = "ulid"
	SchemeUUID Scheme = "uuid"
)

func (s Scheme) IsValid() bool {
	switch s {
	case SchemeULID, SchemeUUID:
		return true
	default:
		return false
	}
}

// Generator returns a new opaque unique identifier on every call.
type Generator func() string

func New(scheme Scheme) (Generator, error) {
	switch scheme {
	case SchemeULID, "":
		return NewULIDGenerator(), nil
	case SchemeUUID:
		return func() string { return uuid.NewString() }, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
	}
}

type randReader struct{}

func (randReader) Read(p []byte) (int, error) { return rand.Read(p) }

// NewULIDGenerator produces monotonic ULIDs, so ids created within the same
// millisecond still sort in creation order.
func NewULIDGenerator() Generator {
	var mu sync.Mutex
	entropy := ulid.Monotonic(randReader{}, 0)
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		now := time.Now().UTC()
		id, err := ulid.New(ulid.Timestamp(now), entropy)
		if err != nil {
			// fallback
			return fmt.Sprintf("%d", now.UnixNano())
		}
		return strings.ToUpper(id.String())
	}
}
