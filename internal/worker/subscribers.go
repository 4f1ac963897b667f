package worker

// Subscriber registers its event handlers.
type Subscriber interface {
	RegisterHandlers()
}

// StartSubscribers registers handlers for every non-nil subscriber.
func StartSubscribers(subscribers ...Subscriber) {
	for _, subscriber := range subscribers {
		if subscriber == nil {
			continue
		}
		subscriber.RegisterHandlers()
	}
}
