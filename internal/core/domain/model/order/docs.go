// Package order implements the order aggregate and its status lifecycle.
//
// An order represents a customer request to move goods, referencing a stock
// item whose quantity was reserved when the order was placed, optionally a
// driver performing the delivery, and a delivery address. The status state
// machine is forward-only: Pending -> Confirmed -> In Transit -> Out for
// Delivery -> Delivered, with Cancelled reachable from Pending or Confirmed.
// Delivered and Cancelled are terminal.
//
// The aggregate enforces its invariants through the NewOrder constructor and
// validated mutation methods; cross-entity invariants (stock quantities,
// driver busy flags) are orchestrated by the application layer within a
// single unit of work.
package order
