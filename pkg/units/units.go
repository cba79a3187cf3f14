// Package units defines the two follower-count scales used by the engine.
//
// Pricing curves are keyed on raw follower counts while the ad-volume and
// growth tables operate on counts in ten-thousands (wan). Keeping the two
// scales as distinct types forces the conversion to happen explicitly at the
// boundary between those layers.
package units

import "github.com/Aurelian-Chen/NovasX/pkg/constants"

// Followers is a raw follower count.
type Followers float64

// WanFollowers is a follower count in ten-thousands.
type WanFollowers float64

// Wan converts a raw follower count to the ten-thousand scale.
func (f Followers) Wan() WanFollowers {
	return WanFollowers(float64(f) / constants.FollowersPerWan)
}

// Raw converts a ten-thousand-scale count back to raw followers.
func (w WanFollowers) Raw() Followers {
	return Followers(float64(w) * constants.FollowersPerWan)
}
