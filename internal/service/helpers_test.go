package service_test

import "strconv"

func idString(id uint64) string { return strconv.FormatUint(id, 10) }
