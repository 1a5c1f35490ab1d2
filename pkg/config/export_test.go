package config

// reset drops the process-wide store so each test starts uninitialized
func reset() {
	instance = nil
	initialized = false
}
