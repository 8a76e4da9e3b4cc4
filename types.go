package amplitude

import (
	"github.com/valeronm/amplitude-api/adapters"
)

// Re-export adapter types for convenience
type (
	LoggerAdapter = adapters.LoggerAdapter
	LogLevel      = adapters.LogLevel
)

// UserWithNoAccount is reported as the user_id of events that carry no user.
const UserWithNoAccount = "user who doesn't have an account"

// Identifiable is implemented by user values that know their own Amplitude
// user id. NewEvent stores Identity() instead of the value itself.
type Identifiable interface {
	Identity() any
}

// Mapper is implemented by anything that renders to an event Payload.
// Event equality is defined over this rendering.
type Mapper interface {
	ToMap() Payload
}
