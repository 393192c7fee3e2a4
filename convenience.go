// File: lixenwraith/appconfig/convenience.go
package appconfig

import "fmt"

// Open creates a manager with the default options and loads the config file.
// This is the recommended way to initialize settings for most applications.
//
//	settings := appconfig.NewValue(MySettings{}.Default())
//	m, err := appconfig.Open(settings, "myapp", "example")
//	defer m.Close()
func Open[T any](value *Value[T], appName, organizationName string) (*Manager[T], error) {
	m, err := NewBuilder(value, appName, organizationName).Build()
	if err != nil {
		return nil, err
	}
	if err := m.Load(); err != nil {
		return nil, err
	}
	return m, nil
}

// MustOpen is like Open but panics on error
func MustOpen[T any](value *Value[T], appName, organizationName string) *Manager[T] {
	m, err := Open(value, appName, organizationName)
	if err != nil {
		panic(fmt.Sprintf("appconfig open failed: %v", err))
	}
	return m
}
