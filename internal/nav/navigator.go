package nav

import (
	"fmt"
	"log"

	"member-solar-system/internal/event"
)

// Navigator получает цель навигации выбранного тела.
type Navigator interface {
	Navigate(target string)
}

// LogNavigator только пишет цель в лог.
type LogNavigator struct{}

func (LogNavigator) Navigate(target string) {
	log.Printf("Clicked planet link: %s", target)
}

// New создаёт навигатор по имени из настроек: "log" или "browser".
func New(kind string) (Navigator, error) {
	switch kind {
	case "", "log":
		return LogNavigator{}, nil
	case "browser":
		return newBrowserNavigator()
	default:
		return nil, fmt.Errorf("nav: unknown navigator %q", kind)
	}
}

// Listener пересылает события выбора тела навигатору.
type Listener struct {
	navigator Navigator
}

func NewListener(navigator Navigator) *Listener {
	return &Listener{navigator: navigator}
}

// Subscribe подписывает слушателя на выбор тел.
func (l *Listener) Subscribe(d *event.Dispatcher) {
	d.Subscribe(event.BodySelected, l)
}

// OnEvent реализует интерфейс event.Listener.
func (l *Listener) OnEvent(e event.Event) {
	if e.Type != event.BodySelected {
		return
	}
	target, ok := e.Data.(string)
	if !ok || target == "" {
		return
	}
	l.navigator.Navigate(target)
}
