package space

import "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/pkg/dbmetrics"

// DBExecutor is the query surface the repository runs against.
// Reused from dbmetrics so plain and instrumented handles both fit.
type DBExecutor = dbmetrics.DBExecutor
