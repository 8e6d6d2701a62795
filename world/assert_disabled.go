//go:build !assert_enabled

package world

func Assert(condition bool) {
}
