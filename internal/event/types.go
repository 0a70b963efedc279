// internal/event/types.go
package event

const (
	BodyHovered   EventType = "BodyHovered"   // Курсор навёлся на тело, Data: types.EntityID
	BodyUnhovered EventType = "BodyUnhovered" // Курсор ушёл с тела, Data: types.EntityID
	BodySelected  EventType = "BodySelected"  // Клик по телу, Data: string (цель навигации)
	LabelAttached EventType = "LabelAttached" // Подпись привязана к телу, Data: types.EntityID
)
