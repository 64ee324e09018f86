//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 桌面端强制启用移动模式的环境变量（用于本地调试触摸交互）
const MobileEmulateEnv = "CABIN_MOBILE_EMULATE"

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时默认返回 false
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
