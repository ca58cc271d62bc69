package pianohat

import (
	"github.com/hatkit/pianohat/sdk/contracts"
)

// NewKeyboard creates a new keyboard client with the specified options.
// It applies default options and selects the platform driver.
//
// opts ...contracts.Option: A variadic list of option functions to customize the client configuration.
//
// Returns:
//   - contracts.Keyboard: An instance of the keyboard client.
//   - error: An error, if any occurred during the creation of the client.
func NewKeyboard(opts ...contracts.Option) (contracts.Keyboard, error) {
	options, err := applyDefaultOptions(opts...)
	if err != nil {
		return nil, err
	}

	keyboard, err := NewClient(&options)
	if err != nil {
		return nil, err
	}

	return keyboard, nil
}
