package world

// CheckCrashes decides if Check panics. It is turned off when debugging a
// crash so that the offending Step can run and be inspected.
var CheckCrashes = true

// CheckFailed holds the last error passed to Check.
var CheckFailed error

func Check(e error) {
	if e != nil {
		CheckFailed = e
		if CheckCrashes {
			panic(e)
		}
	}
}
