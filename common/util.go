package common

import (
	"fmt"
	"net"
	"time"
)

// IsPortOpen tries to establish a TCP connection to the port on localhost.
func IsPortOpen(port int) bool {
	return isPortOpenTimeout(port, time.Second)
}

func isPortOpenTimeout(port int, timeout time.Duration) bool {
	conn, err := net.DialTimeout("tcp", fmt.Sprintf("127.0.0.1:%d", port), timeout)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// IsPortOpenRetry probes the port up to attempts times, waiting period
// between probes.
func IsPortOpenRetry(port int, period time.Duration, attempts int) bool {
	for i := 0; i < attempts; i++ {
		if isPortOpenTimeout(port, period) {
			return true
		}
		time.Sleep(period)
	}
	return false
}

// GetFreePort asks the kernel for a free open port that is ready to use.
// https://gist.github.com/sevkin/96bdae9274465b2d09191384f86ef39d
func GetFreePort() (int, error) {
	a, err := net.ResolveTCPAddr("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}
	l, err := net.ListenTCP("tcp", a)
	if err != nil {
		return 0, err
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port, nil
}
