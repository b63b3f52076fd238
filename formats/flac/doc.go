// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC audio through github.com/faiface/beep/flac,
// which in turn uses github.com/mewkiz/flac.
//
// beep streams every file as stereo float64 pairs already scaled to
// [-1, 1], so the decoded Source always has two channels.
package flac
