// Package ui implements the terminal dashboard.
//
// # Overview
//
// The dashboard is a Bubble Tea program. Model holds the last observed
// controller snapshot plus transient interaction state (help overlay,
// reset confirmation, host editing, toast notifications). Every frame is
// derived from a RenderModel, which BuildRenderModel computes from a
// state.Snapshot with no I/O, so rendering decisions stay testable
// without a terminal or a live controller.
//
// # Architecture
//
// A tick fires every poll interval and re-reads the shared store; the
// background scheduler owns all network traffic. Key presses that issue
// controller commands run as Bubble Tea commands so the event loop never
// blocks on HTTP.
package ui
