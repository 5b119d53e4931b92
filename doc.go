// Package platform is a small polling-style window, renderer and event API
// over pluggable drivers, with [Ebitengine] as the default backend.
//
// The API is deliberately immediate and loop-shaped: the caller owns the
// frame loop, drains events, mutates a retained list of shapes, and
// presents. The driver does the real work of opening a surface and putting
// pixels on it.
//
// # Quick start
//
//	driver := platform.NewEbitenDriver()
//	win, err := platform.NewWindow(platform.WindowConfig{
//		Title: "Demo", Width: 800, Height: 600,
//	}, driver)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer win.Close()
//	if err := win.Show(); err != nil {
//		log.Fatal(err)
//	}
//	ren := platform.NewRenderer(win)
//	ev := platform.NewEvent(win)
//
//	err = platform.Main(driver, func() error {
//		for win.ShouldRun() == platform.StateRunning {
//			for ev.Poll() {
//				if ev.Kind() == platform.EventKeyEsc {
//					return nil
//				}
//			}
//			ren.RemoveShapeByID(2)
//			ren.SetDrawColor(platform.Color{R: 255, A: 255})
//			ren.DrawRect(100, 100, 50, 50, true, 2)
//			if err := ren.Present(); err != nil {
//				return err
//			}
//		}
//		return nil
//	})
//
// [Main] exists because Ebitengine must own the main goroutine: the loop
// runs beside it and exchanges frames and events with it.
//
// # Drivers
//
// [NewEbitenDriver] opens a desktop window. [NewHeadlessDriver] rasterizes
// frames in memory and is what tests and scripted runs use. The term
// subpackage renders frames into a terminal with tcell.
//
// # Retained shapes
//
// [Renderer] keeps every point, line and rect it is given, tagged with an
// id. [Renderer.RemoveShapeByID] drops all shapes with an id, so redrawing
// a moving object is remove-then-draw. [Renderer.Present] paints the clear
// color and then the shapes in the order they were drawn.
//
// # Scripted runs
//
// [Window.InjectKey] and [Window.InjectClick] queue synthetic input ahead
// of the driver's. [LoadTestScript] builds a [TestRunner] that injects keys,
// waits frames and takes screenshots, one step per presented frame.
//
// [Ebitengine]: https://ebitengine.org
package platform
