package codegen

const libRSTemplate = `//! Automatically generated by rune. DO NOT EDIT!

#![no_std]
#![allow(unused_imports, dead_code)]

extern crate alloc;

use runic_types::{*, wasm32::*};
use alloc::boxed::Box;

static mut PIPELINE: Option<Box<dyn FnMut()>> = None;

#[no_mangle]
pub extern "C" fn _manifest() -> u32 {
    let pipeline = move || {};

    unsafe {
        PIPELINE = Some(Box::new(pipeline));
    }

    1
}

#[no_mangle]
pub extern "C" fn _call(
    _capability_type: i32,
    _input_type: i32,
    _capability_idx: i32,
) -> i32 {
    unsafe {
        let pipeline = PIPELINE.as_mut()
            .expect("The rune hasn't been initialized");
        pipeline();

        0
    }
}
`

// EmitLibRS renders the generated lib.rs (spec.md §4.8). The pipeline body
// is a fixed stub closure; wiring each stage's actual proc-block/model
// calls into that closure is out of scope (spec.md's Non-goals exclude the
// WASM runtime this file targets).
func EmitLibRS() File {
	return File{Path: "lib.rs", Data: []byte(libRSTemplate)}
}
