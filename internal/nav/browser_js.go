//go:build js

package nav

import "syscall/js"

// BrowserNavigator меняет путь страницы, в которой запущен wasm-модуль.
type BrowserNavigator struct {
	location js.Value
}

func newBrowserNavigator() (Navigator, error) {
	return &BrowserNavigator{location: js.Global().Get("location")}, nil
}

func (n *BrowserNavigator) Navigate(target string) {
	n.location.Set("pathname", target)
}
