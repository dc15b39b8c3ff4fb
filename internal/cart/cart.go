// Package cart is the client-held shopping cart: a pure reducer over a small
// action set. Totals are recomputed from scratch after every transition, so
// no incremental counter can drift.
package cart

type Item struct {
	ProductID     string  `json:"productId"`
	Name          string  `json:"name"`
	Image         string  `json:"image,omitempty"`
	UnitPrice     float64 `json:"unitPrice"`
	Quantity      int     `json:"quantity"`
	SelectedColor string  `json:"selectedColor,omitempty"`
}

type State struct {
	Items     []Item  `json:"items"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"itemCount"`
}

type Action interface{ isAction() }

// AddItem merges into an existing line when the same product and variant is
// already present, otherwise appends a new line.
type AddItem struct{ Item Item }

// RemoveItem drops every line for the product id.
type RemoveItem struct{ ProductID string }

// UpdateQuantity sets a line's quantity; zero or below removes the line.
type UpdateQuantity struct {
	ProductID string
	Quantity  int
}

type Clear struct{}

func (AddItem) isAction()        {}
func (RemoveItem) isAction()     {}
func (UpdateQuantity) isAction() {}
func (Clear) isAction()          {}

func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case AddItem:
		items := make([]Item, len(state.Items))
		copy(items, state.Items)

		merged := false
		for i := range items {
			if items[i].ProductID == a.Item.ProductID && items[i].SelectedColor == a.Item.SelectedColor {
				items[i].Quantity += a.Item.Quantity
				merged = true
				break
			}
		}
		if !merged {
			items = append(items, a.Item)
		}
		return recompute(items)

	case RemoveItem:
		items := make([]Item, 0, len(state.Items))
		for _, item := range state.Items {
			if item.ProductID != a.ProductID {
				items = append(items, item)
			}
		}
		return recompute(items)

	case UpdateQuantity:
		if a.Quantity <= 0 {
			return Reduce(state, RemoveItem{ProductID: a.ProductID})
		}
		items := make([]Item, len(state.Items))
		copy(items, state.Items)
		for i := range items {
			if items[i].ProductID == a.ProductID {
				items[i].Quantity = a.Quantity
			}
		}
		return recompute(items)

	case Clear:
		return State{Items: []Item{}}

	default:
		return state
	}
}

func recompute(items []Item) State {
	state := State{Items: items}
	for _, item := range items {
		state.Total += item.UnitPrice * float64(item.Quantity)
		state.ItemCount += item.Quantity
	}
	return state
}
