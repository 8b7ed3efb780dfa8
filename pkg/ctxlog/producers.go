package ctxlog

import (
	"crypto/rand"
	"os"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// UUIDProducer returns a producer generating a random UUIDv4 string, the
// usual choice for request IDs.
func UUIDProducer() Producer {
	return func() (any, error) {
		id, err := uuid.NewRandom()
		if err != nil {
			return nil, err
		}
		return id.String(), nil
	}
}

// ULIDProducer returns a producer generating a ULID string. ULIDs sort
// lexicographically by creation time, which keeps log searches cheap.
// Entropy comes from crypto/rand, so the producer is safe for concurrent
// tasks.
func ULIDProducer() Producer {
	return func() (any, error) {
		id, err := ulid.New(ulid.Now(), rand.Reader)
		if err != nil {
			return nil, err
		}
		return id.String(), nil
	}
}

// HostnameProducer returns a producer reporting the machine hostname.
func HostnameProducer() Producer {
	return func() (any, error) {
		return os.Hostname()
	}
}

// PIDProducer returns a producer reporting the current process ID.
func PIDProducer() Producer {
	return func() (any, error) {
		return os.Getpid(), nil
	}
}
