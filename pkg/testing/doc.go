// Package testing provides a widget testing framework.
//
// # Quick Start
//
// Create a tester, pump a widget, and make assertions:
//
//	func TestMyWidget(t *testing.T) {
//	    tester := drifttest.NewWidgetTesterWithT(t)
//	    tester.PumpWidget(MyWidget{})
//
//	    // Find elements
//	    button := tester.Find(drifttest.ByText("Submit")).First()
//
//	    // Simulate gestures
//	    tester.Tap(drifttest.ByType[widgets.Button]())
//	    tester.Pump()
//
//	    // Assert state
//	    if !tester.Find(drifttest.ByText("Submitted")).Exists() {
//	        t.Error("expected 'Submitted' text")
//	    }
//	}
//
// # Frames and Build Statistics
//
// Every Pump paints into a text canvas when something changed. Frame
// returns the last painted frame as a string, and BuildStats reports how
// often each widget built or was skipped by a memo boundary:
//
//	stats := tester.BuildStats()
//	if stats.Builds["app.Card"] != 1 { ... }
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import drifttest "github.com/go-drift/memodemo/pkg/testing"
package testing
