//go:build nrf51 && rtcadc_debug

package main

const debug = true
