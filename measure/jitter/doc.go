// Package jitter characterizes the idle noise of a raw sensor axis.
//
// Feed Analyze a window of raw readings captured while the axis is at rest.
// It computes single-pass time-domain statistics (mean, standard deviation,
// peak-to-peak) and, when a sample rate is provided, a Hann-windowed FFT
// locating the dominant jitter frequency and its level relative to full
// scale. The Result derives recommended dead-zone and step-filter settings
// from the measured noise.
package jitter
