package lifecycle

import "restaurant-api/models"

// State is the business-level order state, derived from the two stored
// fields (delivery_crew, status). Storage keeps them independent; a
// delivered order with no crew stays DELIVERED and is never rewritten.
type State string

const (
	StatePlaced    State = "PLACED"
	StateAssigned  State = "ASSIGNED"
	StateDelivered State = "DELIVERED"
)

// StateOf derives the business state of an order.
func StateOf(o *models.Order) State {
	if o.Status {
		return StateDelivered
	}
	if o.DeliveryCrewID != nil {
		return StateAssigned
	}
	return StatePlaced
}

// Transition documents a state change and who performs it.
type Transition struct {
	From  State  `json:"from"`
	To    State  `json:"to"`
	Actor string `json:"actor"`
}

var transitions = []Transition{
	{From: StatePlaced, To: StateAssigned, Actor: models.RoleManager},
	{From: StateAssigned, To: StateDelivered, Actor: models.RoleManager},
	{From: StateAssigned, To: StateDelivered, Actor: models.RoleDeliveryCrew},
	// Manager may mark delivered before assigning a crew.
	{From: StatePlaced, To: StateDelivered, Actor: models.RoleManager},
}

// All returns the full transition table for documentation.
func All() []Transition {
	return transitions
}

// NextFrom returns all states reachable from s in one transition.
func NextFrom(s State) []State {
	var nexts []State
	seen := map[State]bool{}
	for _, t := range transitions {
		if t.From == s && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}
