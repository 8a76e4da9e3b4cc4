package amplitude

import "sync"

// PropertiesManager holds process-wide properties merged into every event a
// Builder produces.
type PropertiesManager struct {
	properties map[string]any
	mu         sync.RWMutex
}

// NewPropertiesManager creates a manager seeded with a copy of initial.
func NewPropertiesManager(initial map[string]any) *PropertiesManager {
	return &PropertiesManager{
		properties: copyProperties(initial),
	}
}

// Set sets a property value
func (m *PropertiesManager) Set(key string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.properties[key] = value
}

// Get gets a property value
func (m *PropertiesManager) Get(key string) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.properties[key]
	return v, ok
}

// Delete removes a property
func (m *PropertiesManager) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.properties, key)
}

// GetAll returns all properties as a copy, never nil
func (m *PropertiesManager) GetAll() map[string]any {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copyProperties(m.properties)
}

// Merge returns a new map holding the managed properties overlaid by props.
// Keys in props win.
func (m *PropertiesManager) Merge(props map[string]any) map[string]any {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string]any, len(m.properties)+len(props))
	for k, v := range m.properties {
		result[k] = v
	}
	for k, v := range props {
		result[k] = v
	}
	return result
}

// IsEmpty returns true if no property is set
func (m *PropertiesManager) IsEmpty() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.properties) == 0
}

// Clear removes all properties
func (m *PropertiesManager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.properties = make(map[string]any)
}
