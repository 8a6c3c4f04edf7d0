package device

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Linux ioctl request-code layout (include/uapi/asm-generic/ioctl.h):
// dir<<30 | size<<16 | type<<8 | nr. evioctlGetKeyReq builds the
// EVIOCGKEY(len) request for a buffer of the given size, following the
// same _IOC encoding used by _examples/andrieee44-mylib/linux/ioctl.
const (
	iocRead = 2

	evioctlType = 'E'
	evioctlGKey = 0x18

	iocNrShift   = 0
	iocTypeShift = iocNrShift + 8
	iocSizeShift = iocTypeShift + 8
	iocDirShift  = iocSizeShift + 14
)

func evioctlGetKeyReq(size uint) uintptr {
	return uintptr(iocRead<<iocDirShift | size<<iocSizeShift | uint(evioctlType)<<iocTypeShift | evioctlGKey<<iocNrShift)
}

// keyBitmapBytes covers every KeyCode in our table (KEY_MAX = 0x2ff).
const keyBitmapBytes = (0x2ff + 8) / 8

// evioctlGetKey opens its own file descriptor on path (independent of
// whatever handle the evdev library holds) and issues EVIOCGKEY to
// fetch the kernel's current per-key pressed/released bitmap.
func evioctlGetKey(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, keyBitmapBytes)
	req := evioctlGetKeyReq(uint(len(buf)))

	_, _, errno := unix.Syscall(unix.SYS_IOCTL, f.Fd(), req, uintptr(unsafe.Pointer(&buf[0])))
	if errno != 0 {
		return nil, errno
	}
	return buf, nil
}
