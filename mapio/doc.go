// Package mapio moves occupancy grids in and out of images. It is the
// collaborator around the planners, not part of them.
//
// Loading:
//
//	Decode accepts any registered image format; PNG and the PNM family
//	(PBM/PGM/PPM, via github.com/jbuchbinder/gopnm) are registered here.
//	Pixels whose gray level is at least the threshold become Free, the rest
//	Blocked. The result is padded with a Blocked border, so pixel (x, y)
//	becomes Cell{x+1, y+1}.
//
// Rendering:
//
//	Render draws blocked cells, an optional distance map shading, the route
//	and start/goal markers with github.com/fogleman/gg and encodes PNG.
package mapio
