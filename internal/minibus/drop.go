package minibus

// DropExcess relays events from in to out without ever blocking the sender.
// If the receiver falls behind, older undelivered events are discarded so
// that only the most recent one is kept.
func DropExcess(in <-chan any) <-chan any {
	out := make(chan any)
	go func() {
		defer close(out)
		var (
			pending any
			has     bool
		)
		for {
			if has {
				select {
				case e, ok := <-in:
					if !ok {
						// drain the pending event before giving up
						out <- pending
						return
					}
					pending = e
				case out <- pending:
					has = false
				}
			} else {
				e, ok := <-in
				if !ok {
					return
				}
				pending, has = e, true
			}
		}
	}()
	return out
}
