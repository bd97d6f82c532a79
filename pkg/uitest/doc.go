// Package uitest provides a harness for testing control trees without
// a graphics backend.
//
// Create a stage, add controls, and pump frames:
//
//	func TestMyButton(t *testing.T) {
//	    stage := uitest.NewStage(400, 300)
//	    stage.Form().Add(button)
//	    stage.Pump()
//
//	    stage.Tap(50, 20)
//	    stage.Pump()
//
//	    if quads := stage.Backend().QuadsAt(50, 20); len(quads) == 0 {
//	        t.Error("expected quads under the tap point")
//	    }
//	}
//
// Animations run against a fake clock:
//
//	stage.Clock().Advance(100 * time.Millisecond)
//	stage.Pump()
package uitest
