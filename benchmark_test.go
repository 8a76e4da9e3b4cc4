package amplitude

import (
	"testing"
	"time"

	"github.com/valeronm/amplitude-api/adapters"
)

func benchAttributes() Attributes {
	return Attributes{
		UserID:    "user-123",
		DeviceID:  "device-abc",
		EventType: "purchase",
		EventProperties: map[string]any{
			"key1": "value1",
			"key2": 123,
			"key3": true,
		},
		Time:      time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC),
		IP:        "127.0.0.1",
		SessionID: SessionFromMillis(1396381378123),
		Price:     Float64(9.99),
		ProductID: "pro.monthly",
		Device:    DeviceInfo{Platform: "iOS", OSName: "iOS", OSVersion: "17.1"},
	}
}

func BenchmarkNewEvent(b *testing.B) {
	attrs := benchAttributes()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = NewEvent(attrs)
	}
}

func BenchmarkToMap(b *testing.B) {
	event, _ := NewEvent(benchAttributes())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = event.ToMap()
	}
}

func BenchmarkMarshalJSON(b *testing.B) {
	payload := mustBenchEvent(b).ToMap()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = payload.MarshalJSON()
	}
}

func BenchmarkEqual(b *testing.B) {
	left, right := mustBenchEvent(b), mustBenchEvent(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = left.Equal(right)
	}
}

func BenchmarkDecodeAttributes(b *testing.B) {
	bag := map[string]any{
		"user_id":          "user-123",
		"event_type":       "purchase",
		"event_properties": map[string]any{"key1": "value1"},
		"time":             "2016-01-01T00:00:00Z",
		"session_id":       1396381378123,
		"price":            9.99,
		"platform":         "iOS",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = DecodeAttributes(bag)
	}
}

func BenchmarkBuilderBuild(b *testing.B) {
	builder := NewBuilder(Config{
		Device:           DeviceInfo{AppVersion: "1.0.0"},
		EventProperties:  map[string]any{"service": "billing"},
		GenerateInsertID: true,
	}, adapters.NewNoOpLoggerAdapter())
	attrs := benchAttributes()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = builder.Build(attrs)
	}
}

func BenchmarkBuilderBuildParallel(b *testing.B) {
	builder := NewBuilder(Config{}, adapters.NewNoOpLoggerAdapter())
	attrs := benchAttributes()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = builder.Build(attrs)
		}
	})
}

func mustBenchEvent(b *testing.B) *Event {
	b.Helper()
	event, err := NewEvent(benchAttributes())
	if err != nil {
		b.Fatalf("unexpected error: %v", err)
	}
	return event
}
