// Package autoload runs registered initializers in a predictable order.
//
// Some packages need setup code executed at application startup — cron
// task wiring, enumeration sanity checks, template registration — and the
// order must be deterministic so startup behaves the same on every host.
// Go's own init ordering depends on import graphs, which is exactly the
// kind of implicit sequencing this package avoids: packages register a
// named InitFunc (usually from init), and the application runs them all
// explicitly, sorted by name.
//
//	func init() {
//	    autoload.Register("cron.reports", registerReportJobs)
//	}
//
//	// at startup
//	if err := autoload.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// Run stops at the first failure. RunCollect instead runs everything,
// logs each failure, and reports whether any occurred — the right mode for
// batch entry points where one broken task group should not block the
// rest.
package autoload
