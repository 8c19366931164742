package resource

import (
	"container/list"
)

// mergeCollectionExcess acts on a chan of *CollectionChange combining
// changes with the same id so the semantics are maintained without emitting
// every event. Memory use is proportional to one change per id that has not
// been emitted yet.
func mergeCollectionExcess(in <-chan any) <-chan any {
	out := make(chan any)
	go func() {
		defer close(out)

		pending := make(map[string]CollectionChange)
		var queue list.List // of string, Front is which id to send next
		next := func() any {
			if queue.Len() == 0 {
				return nil
			}
			id := queue.Front().Value.(string)
			change := pending[id]
			return &change
		}

		for {
			if queue.Len() == 0 {
				newAny, ok := <-in
				if !ok {
					return
				}
				change := *(newAny.(*CollectionChange))
				pending[change.Id] = change
				queue.PushBack(change.Id)
				continue
			}

			select {
			case newAny, ok := <-in:
				if !ok {
					return
				}
				change := *(newAny.(*CollectionChange))
				id := change.Id
				if old, has := pending[id]; has {
					var send bool
					change, send = mergeChanges(old, change)
					for n := queue.Front(); n != nil; n = n.Next() {
						if n.Value.(string) == id {
							queue.Remove(n)
							break
						}
					}
					if !send {
						delete(pending, id)
						continue
					}
				}
				pending[id] = change
				queue.PushBack(id)
			case out <- next():
				front := queue.Front()
				queue.Remove(front)
				delete(pending, front.Value.(string))
			}
		}
	}()
	return out
}

// mergeChanges combines two changes for the same id into one that describes
// the overall effect.
func mergeChanges(a, b CollectionChange) (c CollectionChange, send bool) {
	b.LastSeedValue = a.LastSeedValue || b.LastSeedValue

	switch a.ChangeType {
	case ChangeTypeAdd:
		switch b.ChangeType {
		case ChangeTypeAdd: // not sure how this happens, but sure
			return b, true
		case ChangeTypeUpdate, ChangeTypeReplace:
			b.ChangeType = ChangeTypeAdd
			b.OldValue = nil
			return b, true
		case ChangeTypeRemove:
			// add then remove cancel out
			return CollectionChange{}, false
		default:
			return b, true
		}
	case ChangeTypeUpdate:
		b.OldValue = a.OldValue
		if b.ChangeType == ChangeTypeAdd { // not sure how this happens, but sure
			b.ChangeType = ChangeTypeReplace
		}
		return b, true
	case ChangeTypeReplace:
		b.OldValue = a.OldValue
		if ct := b.ChangeType; ct == ChangeTypeAdd || ct == ChangeTypeUpdate {
			b.ChangeType = ChangeTypeReplace
		}
		return b, true
	case ChangeTypeRemove:
		b.OldValue = a.OldValue
		if b.ChangeType != ChangeTypeRemove {
			b.ChangeType = ChangeTypeReplace
		}
		return b, true
	default:
		return b, true
	}
}
