// Package domain contains the entities of the price monitor: tracked
// products, the result of checking one product, and batch runs over the
// product set. The types carry no infrastructure concerns so they can be
// shared by the monitor, storage, notifier and API packages.
package domain
