package amplitude

import (
	"reflect"
	"time"
)

// DeviceInfo describes the client an event originated from. Every field is
// always rendered; empty fields render as null.
type DeviceInfo struct {
	AppVersion         string `yaml:"app_version" env:"APP_VERSION" mapstructure:"app_version"`
	Platform           string `yaml:"platform" env:"PLATFORM" mapstructure:"platform"`
	OSName             string `yaml:"os_name" env:"OS_NAME" mapstructure:"os_name"`
	OSVersion          string `yaml:"os_version" env:"OS_VERSION" mapstructure:"os_version"`
	DeviceBrand        string `yaml:"device_brand" env:"DEVICE_BRAND" mapstructure:"device_brand"`
	DeviceManufacturer string `yaml:"device_manufacturer" env:"DEVICE_MANUFACTURER" mapstructure:"device_manufacturer"`
	DeviceModel        string `yaml:"device_model" env:"DEVICE_MODEL" mapstructure:"device_model"`
	DeviceType         string `yaml:"device_type" env:"DEVICE_TYPE" mapstructure:"device_type"`
	Carrier            string `yaml:"carrier" env:"CARRIER" mapstructure:"carrier"`
}

var deviceKeys = [...]string{
	"app_version",
	"platform",
	"os_name",
	"os_version",
	"device_brand",
	"device_manufacturer",
	"device_model",
	"device_type",
	"carrier",
}

func (d *DeviceInfo) fields() [len(deviceKeys)]*string {
	return [...]*string{
		&d.AppVersion,
		&d.Platform,
		&d.OSName,
		&d.OSVersion,
		&d.DeviceBrand,
		&d.DeviceManufacturer,
		&d.DeviceModel,
		&d.DeviceType,
		&d.Carrier,
	}
}

// withDefaults fills every empty field of d from defaults.
func (d DeviceInfo) withDefaults(defaults DeviceInfo) DeviceInfo {
	dst, src := d.fields(), defaults.fields()
	for i := range dst {
		if *dst[i] == "" {
			*dst[i] = *src[i]
		}
	}
	return d
}

// Attributes are the construction parameters of an Event. The zero value of
// each field means "not supplied".
type Attributes struct {
	// UserID is a string or integer id, or an Identifiable. Nil selects
	// UserWithNoAccount.
	UserID          any            `mapstructure:"user_id"`
	DeviceID        string         `mapstructure:"device_id"`
	EventType       string         `mapstructure:"event_type"`
	EventProperties map[string]any `mapstructure:"event_properties"`
	UserProperties  map[string]any `mapstructure:"user_properties"`
	Time            time.Time      `mapstructure:"time"`
	IP              string         `mapstructure:"ip"`
	InsertID        string         `mapstructure:"insert_id"`
	SessionID       SessionID      `mapstructure:"session_id"`

	// Price is required whenever ProductID or RevenueType is set.
	Price       *float64 `mapstructure:"price"`
	Quantity    *int     `mapstructure:"quantity"`
	ProductID   string   `mapstructure:"product_id"`
	RevenueType string   `mapstructure:"revenue_type"`

	Device DeviceInfo `mapstructure:",squash"`
}

// Revenue groups the monetary fields of an event.
type Revenue struct {
	Price       float64
	Quantity    int
	ProductID   string
	RevenueType string
}

// Event is one occurrence reported to Amplitude. Build it with NewEvent;
// fields are exported for reading and are not revalidated if changed.
type Event struct {
	UserID          any
	DeviceID        string
	EventType       string
	EventProperties map[string]any
	UserProperties  map[string]any
	Time            time.Time
	IP              string
	InsertID        string
	SessionID       SessionID
	// Revenue is nil unless a price was supplied.
	Revenue *Revenue
	Device  DeviceInfo
}

var _ Mapper = (*Event)(nil)

// NewEvent validates attrs and returns the resolved Event. It returns a
// *ValidationError, and no Event, when a product id or revenue type is given
// without a price.
func NewEvent(attrs Attributes) (*Event, error) {
	revenue, err := newRevenue(attrs)
	if err != nil {
		return nil, err
	}

	return &Event{
		UserID:          resolveUserID(attrs.UserID),
		DeviceID:        attrs.DeviceID,
		EventType:       attrs.EventType,
		EventProperties: copyProperties(attrs.EventProperties),
		UserProperties:  copyProperties(attrs.UserProperties),
		Time:            attrs.Time,
		IP:              attrs.IP,
		InsertID:        attrs.InsertID,
		SessionID:       attrs.SessionID,
		Revenue:         revenue,
		Device:          attrs.Device,
	}, nil
}

func newRevenue(attrs Attributes) (*Revenue, error) {
	if attrs.Price == nil {
		if attrs.ProductID != "" {
			return nil, &ValidationError{Field: "product_id", Reason: MissingPriceForProductID}
		}
		if attrs.RevenueType != "" {
			return nil, &ValidationError{Field: "revenue_type", Reason: MissingPriceForRevenueType}
		}
		return nil, nil
	}

	quantity := 1
	if attrs.Quantity != nil {
		quantity = *attrs.Quantity
	}
	return &Revenue{
		Price:       *attrs.Price,
		Quantity:    quantity,
		ProductID:   attrs.ProductID,
		RevenueType: attrs.RevenueType,
	}, nil
}

func resolveUserID(v any) any {
	if v == nil {
		return UserWithNoAccount
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return UserWithNoAccount
	}
	if id, ok := v.(Identifiable); ok {
		return id.Identity()
	}
	return v
}

// ToMap renders the event. Keys appear in a fixed order: the core fields,
// the optional identity/time fields that are set, the revenue fields that
// are set, then all device fields.
func (e *Event) ToMap() Payload {
	p := newPayload(4 + 5 + 4 + len(deviceKeys))

	p.set("event_type", e.EventType)
	p.set("user_id", e.UserID)
	p.set("event_properties", copyProperties(e.EventProperties))
	p.set("user_properties", copyProperties(e.UserProperties))

	if e.DeviceID != "" {
		p.set("device_id", e.DeviceID)
	}
	if !e.Time.IsZero() {
		p.set("time", unixMillis(e.Time))
	}
	p.set("ip", e.IP)
	if e.InsertID != "" {
		p.set("insert_id", e.InsertID)
	}
	if !e.SessionID.IsZero() {
		p.set("session_id", e.SessionID.Millis())
	}

	if r := e.Revenue; r != nil {
		if r.ProductID != "" {
			p.set("productId", r.ProductID)
		}
		if r.RevenueType != "" {
			p.set("revenueType", r.RevenueType)
		}
		p.set("quantity", r.Quantity)
		p.set("price", r.Price)
	}

	for i, v := range e.Device.fields() {
		if *v == "" {
			p.set(deviceKeys[i], nil)
		} else {
			p.set(deviceKeys[i], *v)
		}
	}
	return p
}

// Equal reports whether other renders to the same payload as e. Values that
// do not implement Mapper are never equal.
func (e *Event) Equal(other any) bool {
	if e == nil || other == nil {
		return false
	}
	if rv := reflect.ValueOf(other); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return false
	}
	m, ok := other.(Mapper)
	if !ok {
		return false
	}
	return e.ToMap().Equal(m.ToMap())
}

func copyProperties(props map[string]any) map[string]any {
	out := make(map[string]any, len(props))
	for k, v := range props {
		out[k] = v
	}
	return out
}

// Float64 returns a pointer to v, for Attributes.Price.
func Float64(v float64) *float64 {
	return &v
}

// Int returns a pointer to v, for Attributes.Quantity.
func Int(v int) *int {
	return &v
}
