// Package calendar holds the per-day task index and the per-season
// instruction index that schedule generators fill in.
package calendar

// Task list names shared by the generators and renderers.
const (
	Watering      = "Watering"
	Fertilization = "Fertilization"
	SoilChange    = "Soil Change"
)

// TaskList is a named, ordered list of entries.
type TaskList struct {
	Name  string
	Items []string
}

// Add appends an entry to the list.
func (l *TaskList) Add(item string) {
	l.Items = append(l.Items, item)
}

// Len returns the number of entries.
func (l *TaskList) Len() int {
	return len(l.Items)
}

// TaskLists is an insertion-ordered set of named task lists.
type TaskLists struct {
	order []*TaskList
	index map[string]*TaskList
}

// NewTaskLists returns an empty set of task lists.
func NewTaskLists() *TaskLists {
	return &TaskLists{index: make(map[string]*TaskList)}
}

// GetOrCreate returns the list with the given name, creating an empty one
// at the end of the order if it does not exist yet.
func (t *TaskLists) GetOrCreate(name string) *TaskList {
	if l, ok := t.index[name]; ok {
		return l
	}
	l := &TaskList{Name: name}
	t.index[name] = l
	t.order = append(t.order, l)
	return l
}

// Get returns the list with the given name.
func (t *TaskLists) Get(name string) (*TaskList, bool) {
	l, ok := t.index[name]
	return l, ok
}

// Lists returns the lists in creation order.
func (t *TaskLists) Lists() []*TaskList {
	return t.order
}

// Len returns the number of lists.
func (t *TaskLists) Len() int {
	return len(t.order)
}

// Empty reports whether no list holds any entries.
func (t *TaskLists) Empty() bool {
	for _, l := range t.order {
		if l.Len() > 0 {
			return false
		}
	}
	return true
}

// Contains reports whether the named list holds item.
func (t *TaskLists) Contains(name, item string) bool {
	l, ok := t.index[name]
	if !ok {
		return false
	}
	for _, existing := range l.Items {
		if existing == item {
			return true
		}
	}
	return false
}
