//go:build nrf51 && !rtcadc_debug

package main

// debug mirrors boot stages and the boot trace onto the console with a
// "[DBG] " prefix. Build with -tags rtcadc_debug to turn it on.
const debug = false
