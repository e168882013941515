// Package shclip clips polygons with the Sutherland-Hodgman algorithm.
//
// A subject polygon of any winding is clipped against a convex clip region
// whose vertices are listed clockwise (y axis pointing up). The region is
// applied one directed edge at a time: each pass keeps the part of the
// working polygon that lies strictly to the right of the edge and inserts
// crossing points where the polygon leaves or enters that half-plane.
//
//	square := shclip.Polygon{shclip.Pt(0, 0), shclip.Pt(0, 1), shclip.Pt(1, 1), shclip.Pt(1, 0)}
//	region := shclip.Polygon{shclip.Pt(0.25, 0.25), shclip.Pt(0.25, 0.75), shclip.Pt(1.75, 0.75), shclip.Pt(1.75, 0.25)}
//	out := shclip.Clip(square, region)
//
// Points lying exactly on a clip edge count as outside. As a result a
// subject vertex that touches the region boundary from inside may appear
// twice in the output, and a subject that only touches the region from
// outside clips to an empty polygon.
//
// Crossing points always lie on the subject edge that produced them. They
// come from the line-line formula of Intersect, except when that result
// falls outside the edge's bounding box, which happens when both ends of the
// edge sit on or next to the clip line. The crossing is then interpolated
// along the edge instead. This keeps every output vertex inside the region
// (up to rounding), and clipping an already clipped polygon again leaves
// its shape and area unchanged up to rounding.
//
// Vertices with NaN coordinates are outside every edge, because a NaN side
// value is not negative. An edge from such a vertex to an inside vertex
// still emits the inside vertex; only its crossing is dropped, since it is
// not finite.
//
// Clipping is pure: inputs are never modified and every call allocates its
// result. Concave regions are not supported; use ValidateRegion to check a
// region before use.
package shclip
