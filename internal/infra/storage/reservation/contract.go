package reservation

import "github.com/m04kA/SMC-ApartmentBooking/pkg/dbmetrics"

// DBExecutor переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
