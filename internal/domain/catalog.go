package domain

import "fmt"

// The catalog maps API keys to the labels stored by the directory of
// record. The tables are configuration data: handlers and services look
// values up here instead of branching on status names.

var categoryLabels = map[FailureCategory]string{
	FailureCategoryAccess:    "Доступ",
	FailureCategoryHardware:  "Оборудование",
	FailureCategorySoftware:  "ПО",
	FailureCategoryNetwork:   "Сеть",
	FailureCategoryFurniture: "Мебель",
	FailureCategoryOther:     "Другое",
}

var urgencyLabels = map[TicketUrgency]string{
	TicketUrgencyLow:    "Низкая",
	TicketUrgencyMedium: "Средняя",
	TicketUrgencyHigh:   "Высокая",
	TicketUrgencyUrgent: "Критическая",
}

var statusLabels = map[TicketStatus]string{
	TicketStatusNew:              "Новая",
	TicketStatusInProgress:       "В работе",
	TicketStatusRevision:         "На доработке",
	TicketStatusCompleted:        "Выполнена",
	TicketStatusAwaitingPurchase: "Ожидают закупки",
}

// statusKeys includes the legacy "Выполненные" label still present in
// older directory rows; both labels resolve to completed.
var statusKeys = map[string]TicketStatus{
	"Новая":           TicketStatusNew,
	"В работе":        TicketStatusInProgress,
	"На доработке":    TicketStatusRevision,
	"Выполнена":       TicketStatusCompleted,
	"Выполненные":     TicketStatusCompleted,
	"Ожидают закупки": TicketStatusAwaitingPurchase,
}

// CategoryLabel resolves a category key to its stored label.
func CategoryLabel(key FailureCategory) (string, bool) {
	label, ok := categoryLabels[key]
	return label, ok
}

// UrgencyLabel resolves an urgency key to its stored label.
func UrgencyLabel(key TicketUrgency) (string, bool) {
	label, ok := urgencyLabels[key]
	return label, ok
}

// StatusLabel resolves a status key to its stored label.
func StatusLabel(key TicketStatus) (string, bool) {
	label, ok := statusLabels[key]
	return label, ok
}

// StatusFromLabel resolves a stored status label back to its key.
func StatusFromLabel(label string) (TicketStatus, bool) {
	key, ok := statusKeys[label]
	return key, ok
}

var statusMessages = map[TicketStatus]string{
	TicketStatusNew:              "Ваша заявка #%d создана.",
	TicketStatusInProgress:       "Ваша заявка #%d взята в работу.",
	TicketStatusRevision:         "Ваша заявка #%d отправлена на доработку.",
	TicketStatusCompleted:        "Ваша заявка #%d выполнена!",
	TicketStatusAwaitingPurchase: "Ваша заявка #%d ожидает закупки.",
}

// StatusMessage renders the requester-facing notification text for a
// status change. Unknown statuses fall back to a generic message.
func StatusMessage(status TicketStatus, ticketID int64) string {
	if tpl, ok := statusMessages[status]; ok {
		return fmt.Sprintf(tpl, ticketID)
	}
	label, ok := statusLabels[status]
	if !ok {
		label = string(status)
	}
	return fmt.Sprintf("Статус заявки #%d изменен на \"%s\"", ticketID, label)
}

// CreationMessage renders the notification text for a freshly filed ticket.
func CreationMessage(ticketID int64) string {
	return fmt.Sprintf("Ваша заявка #%d создана.", ticketID)
}
