// Package reveal is a before/after image comparison slider for [Ebitengine].
//
// Two images of the same subject are stacked; a draggable vertical divider
// reveals the "before" image on its left and the "after" image on its right.
// A catalog of slides can be browsed with navigation buttons, each slide
// carrying a caption and an optional rich-text description. While nobody
// touches the widget, an autoplay sweep moves the divider back and forth.
//
// # Quick start
//
// Load a YAML config, build a [View] over the asset directory and hand both
// to [Run]:
//
//	cfg, err := reveal.LoadConfig("slides.yaml")
//	// ...
//	catalog, err := cfg.Catalog()
//	view, err := reveal.NewView(os.DirFS("assets"), reveal.ViewOptions{})
//	widget := reveal.New(catalog, view.Elements(catalog),
//		reveal.WithAutoplay(cfg.AutoplayConfig()))
//	err = reveal.Run(widget, view, cfg.RunConfig())
//
// # Widget and elements
//
// [Widget] holds all state: the reveal percentage, the [Autoplay] sweep, the
// drag session and the active slide. It renders nothing itself; it pushes a
// [Layout] and slide content into the collaborators in [Elements]. [View] is
// the Ebitengine implementation of those collaborators, and tests can supply
// their own.
//
// Any manual interaction (pressing the handle, tapping the image or selecting
// a slide) disables autoplay for good. [Widget.PauseAutoplay] with
// manual=false pauses it for the configured cooldown instead, after which the
// sweep restarts from its start position.
//
// # Automated testing
//
// [View.InjectTap], [View.InjectHandleDrag] and [View.InjectSelect] queue
// synthetic pointer events addressed by reveal percentage or slide index, one
// per frame; [View.InjectClick] and [View.InjectDrag] take raw screen
// coordinates. [LoadTestScript] reads a JSON script of these actions plus
// waits and screenshots; attach it with [View.SetTestRunner]. Screenshots are
// written as PNG files.
//
// # Events
//
// [WithEventStore] forwards widget [Event] values to an [EventStore]. The
// ecs submodule provides one that publishes into a Donburi world.
//
// [Ebitengine]: https://ebitengine.org
package reveal
