package models

// TrainArrival is one predicted arrival of a train at a stop.
type TrainArrival struct {
	RouteID        string `json:"routeId"`
	RouteName      string `json:"routeName,omitempty"`
	ArrivalSeconds int64  `json:"arrivalSeconds"`
	HumanTime      string `json:"humanTime"`
}

// StopStatus is the full answer to "what is coming to this stop?".
// Routes always holds the statically-derived serving set, so it can be
// a superset of the routes that currently have predictions.
type StopStatus struct {
	StopID        string                    `json:"stopId"`
	StopName      string                    `json:"stopName,omitempty"`
	Routes        []string                  `json:"routes"`
	TrainArrivals map[string][]TrainArrival `json:"trainArrivals"`
}

func NewStopStatus(stopID, stopName string, routes []string, trainArrivals map[string][]TrainArrival) *StopStatus {
	if trainArrivals == nil {
		trainArrivals = map[string][]TrainArrival{}
	}
	return &StopStatus{
		StopID:        stopID,
		StopName:      stopName,
		Routes:        routes,
		TrainArrivals: trainArrivals,
	}
}
