package booking

import "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/pkg/dbmetrics"

// DBExecutor is the query surface the repository runs against.
type DBExecutor = dbmetrics.DBExecutor

// TxExecutor is an executor bound to an open transaction.
type TxExecutor = dbmetrics.TxExecutor
