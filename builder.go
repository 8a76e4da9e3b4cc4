package amplitude

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/valeronm/amplitude-api/adapters"
)

const maxPropertyKeyLen = 255

// Builder creates Events with process-wide defaults applied: device info,
// global event and user properties, generated insert ids and time stamps.
// It is safe for concurrent use.
type Builder struct {
	config          Config
	eventProperties *PropertiesManager
	userProperties  *PropertiesManager
	loggerAdapter   LoggerAdapter
	now             func() time.Time
	newInsertID     func() string
}

// NewBuilder creates a Builder. A nil logger selects a PrintLoggerAdapter at
// config.LogLevel.
func NewBuilder(config Config, logger LoggerAdapter) *Builder {
	if logger == nil {
		level, err := adapters.ParseLogLevel(config.LogLevel)
		if err != nil {
			level = adapters.LogLevelWarn
		}
		logger = adapters.NewPrintLoggerAdapter(level)
	}

	return &Builder{
		config:          config,
		eventProperties: NewPropertiesManager(config.EventProperties),
		userProperties:  NewPropertiesManager(config.UserProperties),
		loggerAdapter:   logger,
		now:             time.Now,
		newInsertID:     uuid.NewString,
	}
}

func validatePropertyKey(key string) error {
	keyLen := len(key)
	if keyLen == 0 {
		return errors.New("property key cannot be empty")
	}
	if keyLen > maxPropertyKeyLen {
		return errors.New("property key cannot exceed 255 characters")
	}
	return nil
}

// SetEventProperty sets a property added to every event's event_properties.
func (b *Builder) SetEventProperty(key string, value any) error {
	if err := validatePropertyKey(key); err != nil {
		return err
	}
	b.eventProperties.Set(key, value)
	return nil
}

// SetUserProperty sets a property added to every event's user_properties.
func (b *Builder) SetUserProperty(key string, value any) error {
	if err := validatePropertyKey(key); err != nil {
		return err
	}
	b.userProperties.Set(key, value)
	return nil
}

// EventProperty returns a global event property.
func (b *Builder) EventProperty(key string) (any, bool) {
	return b.eventProperties.Get(key)
}

// UserProperty returns a global user property.
func (b *Builder) UserProperty(key string) (any, bool) {
	return b.userProperties.Get(key)
}

func (b *Builder) RemoveEventProperty(key string) {
	b.eventProperties.Delete(key)
}

func (b *Builder) RemoveUserProperty(key string) {
	b.userProperties.Delete(key)
}

// ClearEventProperties removes every global event property, including those
// seeded from the config.
func (b *Builder) ClearEventProperties() {
	b.eventProperties.Clear()
}

// ClearUserProperties removes every global user property, including those
// seeded from the config.
func (b *Builder) ClearUserProperties() {
	b.userProperties.Clear()
}

func (b *Builder) EventProperties() map[string]any {
	return b.eventProperties.GetAll()
}

func (b *Builder) UserProperties() map[string]any {
	return b.userProperties.GetAll()
}

// Build applies the builder defaults to attrs and constructs the Event.
// Values supplied in attrs always take precedence over defaults.
func (b *Builder) Build(attrs Attributes) (*Event, error) {
	if !b.eventProperties.IsEmpty() {
		attrs.EventProperties = b.eventProperties.Merge(attrs.EventProperties)
	}
	if !b.userProperties.IsEmpty() {
		attrs.UserProperties = b.userProperties.Merge(attrs.UserProperties)
	}
	attrs.Device = attrs.Device.withDefaults(b.config.Device)

	if attrs.InsertID == "" && b.config.GenerateInsertID {
		attrs.InsertID = b.newInsertID()
	}
	if attrs.Time.IsZero() && b.config.StampTime {
		attrs.Time = b.now()
	}

	event, err := NewEvent(attrs)
	if err != nil {
		b.loggerAdapter.Warn("Rejected event %q: %v", attrs.EventType, err)
		return nil, err
	}

	b.loggerAdapter.Debug("Built event: %s", event.EventType)
	return event, nil
}

// BuildMap decodes a loosely-typed attribute bag with DecodeAttributes and
// builds it. Unknown keys are ignored and logged at debug level.
func (b *Builder) BuildMap(bag map[string]any) (*Event, error) {
	attrs, unused, err := decodeAttributes(bag, false)
	if err != nil {
		b.loggerAdapter.Warn("Failed to decode attributes: %v", err)
		return nil, err
	}
	if len(unused) > 0 {
		sort.Strings(unused)
		b.loggerAdapter.Debug("Ignoring unknown attributes: %s", strings.Join(unused, ", "))
	}
	return b.Build(attrs)
}
