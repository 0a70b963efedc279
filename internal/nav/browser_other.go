//go:build !js

package nav

import "errors"

func newBrowserNavigator() (Navigator, error) {
	return nil, errors.New("nav: browser navigator is only available in js/wasm builds")
}
