package handlers

// HandlerBundle aggregates the handlers the router wires up.
type HandlerBundle struct {
	Services *ServiceHandler
	Bookings *BookingHandler
	Contact  *ContactHandler
}
