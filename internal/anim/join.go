package anim

// Join returns a completion callback that runs then once it has been called n
// times. It is used to wait for sibling animations that run side by side,
// e.g. the two axes of a settle:
//
//	done := anim.Join(2, onSettled)
//	x.AnimateTo(tx, d, done)
//	y.AnimateTo(ty, d, done)
//
// Extra calls after then has run are ignored. If a sibling is cancelled its
// share never arrives and then does not run.
func Join(n int, then func()) func() {
	if n <= 0 {
		if then != nil {
			then()
		}
		return func() {}
	}

	remaining := n
	return func() {
		if remaining == 0 {
			return
		}
		remaining--
		if remaining == 0 && then != nil {
			then()
		}
	}
}
