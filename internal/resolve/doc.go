// Package resolve decides, per cleanup mode, which files or leaf
// directories are orphans once their primary media is gone.
//
// All three modes share one partition step: a file is "main" when its size
// exceeds the mode threshold or its extension is in the mode's recognized
// set; everything else is "extra". Files named folder.* are reusable
// default artwork and are excluded from consideration entirely.
//
//   - Movies: a leaf directory is a candidate when its top-level total size
//     falls under the threshold (the movie file is gone, leftovers remain).
//   - TV: an extra file is a candidate when no main file's name contains
//     its normalized base name.
//   - Music: a leaf directory is a candidate when it holds no main files
//     at all.
//
// Main files are never candidates, and non-leaf directories are never
// deleted.
package resolve
