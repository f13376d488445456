// Package render rasterizes H-tree skeletons into RGBA pixmaps and PNG
// files.
//
// The core htree package stops at normalized line segments; this
// package is the consumer side: it scales segments to pixel space,
// draws them with an integer line stepper, and optionally supersamples
// for anti-aliased output.
//
// Example:
//
//	t, _ := htree.New[float64](10)
//	pm, err := render.Render(t, render.WithScale(700), render.WithSupersample(2))
//	if err != nil {
//		log.Fatal(err)
//	}
//	_ = pm.SavePNG("htree.png")
package render
