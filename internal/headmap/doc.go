// Package headmap binds a scalar time series to a point cloud of spheres.
//
// Loading reads two CSV inputs: a shape file with one x,y,z vertex per line
// and a data file with one row of scalar values per vertex, one value per
// timestep. Each vertex becomes a sphere in a [Scene] under a single root
// transform. Seeking to a timestep colors and scales every sphere by its
// value relative to the global [ValueRange]:
//
//	cloud, err := headmap.Load(scene.New(), "head_shape.csv", "data.csv", headmap.DefaultOptions())
//	if err != nil {
//		return err
//	}
//	cloud.Seek(0)
//
// # Data file quirk
//
// The last field of every data row is dropped before parsing. Rows written
// with a trailing delimiter ("1,3,") therefore yield exactly their values;
// rows without one lose their final column. A warning is logged whenever a
// non-empty field is dropped.
//
// # Degenerate range
//
// When every value in the dataset is equal the normalized fraction is
// defined as 0.5, giving a fixed olive color and the base scale.
package headmap
