package manager

import "github.com/tailored-agentic-units/records/observability"

// Events emitted by a Manager.
const (
	EventSet      observability.EventType = "records.set"
	EventSetList  observability.EventType = "records.setlist"
	EventDelete   observability.EventType = "records.delete"
	EventRejected observability.EventType = "records.rejected"
	EventWatch    observability.EventType = "records.watch"
	EventUnwatch  observability.EventType = "records.unwatch"
	EventNotify   observability.EventType = "records.notify"
)
